package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kexlab/ecdh-go/pkg/ecdh"
	"github.com/kexlab/ecdh-go/pkg/ecdh/curve"
)

// demoCmd runs both sides of an exchange in-process. Secrets are
// compared and discarded, never printed.
func demoCmd() *cobra.Command {
	var groupName string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a local two-party key exchange",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := curve.ParseGroupID(groupName)
			if err != nil {
				return err
			}

			cfg := ecdh.Config{Settings: settings}
			alice, err := ecdh.NewSession(id, cfg)
			if err != nil {
				return err
			}
			defer alice.Destroy()
			bob, err := ecdh.NewSession(id, cfg)
			if err != nil {
				return err
			}
			defer bob.Destroy()

			alicePub, err := alice.PublicValue()
			if err != nil {
				return err
			}
			bobPub, err := bob.PublicValue()
			if err != nil {
				return err
			}
			if err := alice.SetPeerPublicValue(bobPub); err != nil {
				return err
			}
			if err := bob.SetPeerPublicValue(alicePub); err != nil {
				return err
			}

			aliceSecret, err := alice.SharedSecret()
			if err != nil {
				return err
			}
			bobSecret, err := bob.SharedSecret()
			if err != nil {
				return err
			}
			defer ecdh.ZeroizeBytes(aliceSecret)
			defer ecdh.ZeroizeBytes(bobSecret)

			fmt.Printf("group:         %s\n", id)
			fmt.Printf("public value:  %d bytes\n", len(alicePub))
			fmt.Printf("shared secret: %d bytes\n", len(aliceSecret))
			fmt.Printf("secrets match: %v\n", bytes.Equal(aliceSecret, bobSecret))
			return nil
		},
	}

	cmd.Flags().StringVarP(&groupName, "group", "g", "ecp256", "group name (see `ecdh-go groups`)")
	return cmd
}
