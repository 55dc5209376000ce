// Package document turns a completed form registry into a SEP<MAC>.cnf.xml
// provisioning file for the Cisco 8945. Build assembles the typed document
// model from the registry snapshot, Render marshals it deterministically, and
// Generate writes it atomically under the chosen output directory.
package document
