//go:build !cuerippper

package cli

// experimentalRippers is empty in the default build; see rippers_cuerippper.go
// for the build-tag-gated extension.
func experimentalRippers() []string { return nil }
