package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kexlab/ecdh-go/pkg/ecdh/curve"
)

func groupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List supported ECDH groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-10s %-18s %5s %12s\n", "NAME", "CURVE", "ID", "FIELD BYTES")
			for _, id := range curve.All() {
				g, err := curve.Resolve(id)
				if err != nil {
					return err
				}
				fmt.Printf("%-10s %-18s %5d %12d\n", id, g, uint16(id), g.FieldByteLen())
			}
			return nil
		},
	}
}
