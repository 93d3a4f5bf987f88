//go:build cuerippper

package cli

// experimentalRippers extends the supported-ripper list with "CUERipper"
// when this experimental build tag is compiled in.
func experimentalRippers() []string { return []string{"CUERipper"} }
