// Package tui implements the interactive provisioning wizard.
//
// The wizard is a single bubbletea screen: the complete 8945 form rendered
// as a scrolling field list with inline editing. Free-text fields open a
// text input in place, dropdowns open an option picker, and 's' generates
// the SEP<MAC>.cnf.xml file without leaving the session. Fields hidden by
// the current selections are skipped by both navigation and rendering.
package tui
