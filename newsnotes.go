// Package newsnotes scrapes a remote news listing into articles and keeps
// them in a local store together with free-form notes attached to each
// article.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, chi/).
package newsnotes
