package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var rippersCmd = &cobra.Command{
	Use:   "rippers",
	Short: "List the ripper variants this build recognizes",
	RunE:  runRippers,
}

func runRippers(cmd *cobra.Command, args []string) error {
	out, err := json.Marshal(supportedRippers())
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// supportedRippers returns {"EAC", "XLD", "whipper"}, extended with
// "CUERipper" when the cuerippper build tag is set.
func supportedRippers() []string {
	base := []string{"EAC", "XLD", "whipper"}
	return append(base, experimentalRippers()...)
}
