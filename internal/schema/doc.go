// Package schema holds the provisioning form model: the ordered field
// registry, dropdown option sets, the tag-based visibility rule table, and
// the cursor navigator the UI steps with.
//
// The registry is an explicit object passed to each component, so multiple
// forms (or tests) can run without shared state. The field order is fixed at
// construction and used for display only; visibility rules and document
// emission both address fields by tag.
//
// NewPhoneForm builds the complete Cisco 8945 form. Edits go through Form's
// SetValue/SetSelected, which rerun the visibility resolver so the hidden
// flag on every field always reflects the current selections.
package schema
