package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change per-user cycling preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current preferences",
	RunE:  runPrefsGet,
}

var prefsSetPerDeskCmd = &cobra.Command{
	Use:   "per-desk <true|false>",
	Short: "Restrict Alt-Tab to the current desk by default",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsSetPerDesk,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetPerDeskCmd)
}

func runPrefsGet(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Printf("alt_tab_per_active_desk = %v\n", app.Prefs.AltTabPerActiveDesk(app.Ctx()))
	return nil
}

func runPrefsSetPerDesk(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	value, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("expected true or false, got %q", args[0])
	}
	if err := app.Prefs.SetAltTabPerActiveDesk(app.Ctx(), value); err != nil {
		return err
	}

	// A running shell picks this up through its file watch.
	fmt.Printf("alt_tab_per_active_desk = %v\n", value)
	return nil
}
