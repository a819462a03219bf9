package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	beacon "github.com/statbeam/beacon-go"
	"github.com/statbeam/beacon-go/adapters"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "beacon",
		Short:        "Fire anonymous usage-telemetry event beacons",
		SilenceUsage: true,
	}
	root.AddCommand(newSendCmd())
	return root
}

func newSendCmd() *cobra.Command {
	var (
		endpoint    string
		trackingID  string
		appVersion  string
		category    string
		action      string
		value       int
		player      bool
		productName string
		bundleID    string
		companyName string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Build an event payload and deliver it to the collection endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := adapters.LogLevelWarn
			if verbose {
				level = adapters.LogLevelDebug
			}
			logger := adapters.NewPrintLoggerAdapter(level)

			mode := beacon.RuntimeModeEditor
			if player {
				mode = beacon.RuntimeModePlayer
			}

			store := adapters.NewMemoryPreferenceStore()
			builder := beacon.NewPayloadBuilder(
				adapters.NewMachineDeviceID(store),
				adapters.RuntimeSystemInfo{},
				adapters.StaticAppInfo{Name: productName, Bundle: bundleID, Company: companyName},
				mode,
				logger,
			)

			defaultPayload, err := builder.BuildDefaultPayload(trackingID, appVersion, nil)
			if err != nil {
				return err
			}

			var eventValue *int
			if cmd.Flags().Changed("value") {
				eventValue = beacon.Int(value)
			}
			payload := beacon.BuildEventPayload(defaultPayload, category, action, eventValue)

			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), payload)
			}

			done := make(chan error, 1)
			reporter := beacon.NewReporter(adapters.NewNetHTTPAdapter(), logger)
			if err := reporter.Send(endpoint, payload, func(result string, err error) {
				done <- err
			}); err != nil {
				return err
			}
			if err := <-done; err != nil {
				return fmt.Errorf("delivery failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "event delivered")
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", beacon.DefaultEndpoint, "collection endpoint URL")
	cmd.Flags().StringVar(&trackingID, "tracking-id", "", "tracking id of the analytics property")
	cmd.Flags().StringVar(&appVersion, "app-version", "", "package version to report")
	cmd.Flags().StringVar(&category, "category", "", "event category (ec)")
	cmd.Flags().StringVar(&action, "action", "", "event action (ea)")
	cmd.Flags().IntVar(&value, "value", 0, "optional integer event value (ev)")
	cmd.Flags().BoolVar(&player, "player", false, "report runtime mode player instead of editor")
	cmd.Flags().StringVar(&productName, "product-name", "", "application display name (an)")
	cmd.Flags().StringVar(&bundleID, "bundle-id", "", "bundle/application identifier (aid)")
	cmd.Flags().StringVar(&companyName, "company-name", "", "publisher name (aiid)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the payload and debug logs")

	_ = cmd.MarkFlagRequired("tracking-id")
	_ = cmd.MarkFlagRequired("app-version")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("action")

	return cmd
}
