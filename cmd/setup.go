package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gdrive-eraser/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Guided setup for Google Drive API credentials",
	Long: `Walk through creating OAuth credentials for the Google Drive API and
placing them where gdrive-eraser can find them. This command only prints
instructions and checks for the credentials file; it never modifies your
Drive.`,
	RunE: runSetupCommand,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetupCommand(cmd *cobra.Command, args []string) error {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to determine config directory: %w", err)
	}

	defaultPath := filepath.Join(configDir, config.CredentialsFileName)
	credPath := config.GetCredentialsPath()

	fmt.Println("Google Drive API Setup")
	fmt.Println("======================")
	fmt.Println()
	fmt.Println("1. Go to https://console.cloud.google.com/")
	fmt.Println("2. Create a new project (or select an existing one)")
	fmt.Println("3. Enable the Google Drive API:")
	fmt.Println("   APIs & Services > Library > search \"Google Drive API\" > Enable")
	fmt.Println("4. Create OAuth credentials:")
	fmt.Println("   APIs & Services > Credentials > Create Credentials > OAuth client ID")
	fmt.Println("   Application type: Desktop app")
	fmt.Println("5. Download the JSON file and save it as:")
	fmt.Printf("   %s\n", defaultPath)
	fmt.Println()

	if _, err := os.Stat(credPath); err == nil {
		fmt.Printf("Found credentials file at %s. You're ready to go:\n", credPath)
		fmt.Println()
		fmt.Println("  gdrive-eraser list --size 100      # find files >= 100 MB")
		fmt.Println("  gdrive-eraser delete pdf --dry-run # preview a deletion")

		return nil
	}

	fmt.Printf("No credentials file found yet (config dir: %s).\n", configDir)
	fmt.Println("Run this command again after saving the file to verify the setup.")
	fmt.Println()
	fmt.Println("You can also point at a file elsewhere with --credentials:")
	fmt.Println()
	fmt.Println("  gdrive-eraser --credentials /path/to/credentials.json list pdf")

	return nil
}
