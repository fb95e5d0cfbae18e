package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

// GetTxCmd returns the transaction commands for the oracle module
func GetTxCmd() *cobra.Command {
	oracleTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Oracle transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	oracleTxCmd.AddCommand(
		CmdRequestPrices(),
		CmdFulfillRequest(),
		CmdCancelRequest(),
		CmdRefundRequest(),
		CmdSetSigner(),
		CmdSetQuorum(),
		CmdSetController(),
		CmdSetWhitelist(),
	)

	return oracleTxCmd
}

// CmdRequestPrices returns a CLI command handler for creating a price request
func CmdRequestPrices() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-prices [payload-hex] [expires-at]",
		Short: "Request a price refresh",
		Long: `Create a new price request. The payload is opaque hex passed through for
the consumer's own bookkeeping and may be empty (""). expires-at is a unix
timestamp; 0 means the request never expires.

Example:
  $ appd tx oracle request-prices deadbeef 0 --from consumer-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			var payload []byte
			if args[0] != "" {
				payload, err = hex.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("invalid payload hex: %w", err)
				}
			}

			expiresAt, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expires-at %s: %w", args[1], err)
			}

			msg := types.NewMsgRequestPrices(clientCtx.GetFromAddress().String(), payload, expiresAt)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFulfillRequest returns a CLI command handler for submitting a signed
// price bundle against a pending request
func CmdFulfillRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fulfill-request [request-id] [bundle-file]",
		Short: "Submit a signed price bundle for a request",
		Long: `Submit a fulfillment bundle collected from off-chain signers. The bundle
file is a JSON array of submissions:

  [
    {
      "signer": "0x...",
      "signature": "<base64 r||s||v>",
      "timestamp": 1700000000,
      "price_vector": "<base64 wire vector>"
    }
  ]

The sender must be on the controller allow-list.

Example:
  $ appd tx oracle fulfill-request 7 bundle.json --from relay-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			requestId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request id %s: %w", args[0], err)
			}

			bz, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read bundle file: %w", err)
			}

			var submissions []types.SignedSubmission
			if err := json.Unmarshal(bz, &submissions); err != nil {
				return fmt.Errorf("parse bundle file: %w", err)
			}

			msg := types.NewMsgFulfillRequest(clientCtx.GetFromAddress().String(), requestId, submissions)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelRequest returns a CLI command handler for cancelling a pending request
func CmdCancelRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-request [request-id]",
		Short: "Cancel a pending request you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			requestId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request id %s: %w", args[0], err)
			}

			msg := types.NewMsgCancelRequest(clientCtx.GetFromAddress().String(), requestId)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRefundRequest returns a CLI command handler for administratively closing
// a pending request
func CmdRefundRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund-request [request-id]",
		Short: "Close a pending request administratively",
		Long: `Close a pending request that can no longer be fulfilled, typically because
its expiry passed. Restricted to administrators and controllers.

Example:
  $ appd tx oracle refund-request 7 --from admin-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			requestId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request id %s: %w", args[0], err)
			}

			msg := types.NewMsgRefundRequest(clientCtx.GetFromAddress().String(), requestId)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetSigner returns a CLI command handler for toggling a signer
func CmdSetSigner() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-signer [signer-address] [active]",
		Short: "Activate or deactivate an off-chain signer (admin only)",
		Long: `Toggle a signer in the registry. The signer address is the 0x-prefixed hex
address derived from the signer's key.

Example:
  $ appd tx oracle set-signer 0x1f9840a85d5af5bf1d1762f925bdaddc4201f984 true --from admin-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			active, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid active flag %s: %w", args[1], err)
			}

			msg := types.NewMsgSetSigner(clientCtx.GetFromAddress().String(), args[0], active)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetQuorum returns a CLI command handler for changing the signature threshold
func CmdSetQuorum() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-quorum [quorum]",
		Short: "Set the fulfillment signature threshold (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			quorum, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid quorum %s: %w", args[0], err)
			}

			msg := types.NewMsgSetQuorum(clientCtx.GetFromAddress().String(), uint32(quorum))
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetController returns a CLI command handler for toggling a relay on the
// controller allow-list
func CmdSetController() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-controller [controller-address] [enabled]",
		Short: "Allow or disallow a relay to submit fulfillments (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			enabled, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid enabled flag %s: %w", args[1], err)
			}

			msg := types.NewMsgSetController(clientCtx.GetFromAddress().String(), args[0], enabled)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetWhitelist returns a CLI command handler for toggling a consumer on
// the whitelist
func CmdSetWhitelist() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-whitelist [consumer-address] [enabled]",
		Short: "Allow or disallow a consumer to create requests (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			enabled, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid enabled flag %s: %w", args[1], err)
			}

			msg := types.NewMsgSetWhitelist(clientCtx.GetFromAddress().String(), args[0], enabled)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
