package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"invoicemaker/internal/config"
	"invoicemaker/internal/wizard"
)

const openRootOption = "Open Root Output Directory"

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open an output folder in the file manager",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runOpen(cfg.OutputRoot())
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(outputRoot string) error {
	options := []string{openRootOption}

	// One option per year/client folder, newest years first.
	var folders []string
	if years, err := os.ReadDir(outputRoot); err == nil {
		for _, year := range years {
			if !year.IsDir() {
				continue
			}
			clients, err := os.ReadDir(filepath.Join(outputRoot, year.Name()))
			if err != nil {
				continue
			}
			for _, client := range clients {
				if client.IsDir() {
					folders = append(folders, year.Name()+" / "+client.Name())
				}
			}
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(folders)))
	options = append(options, folders...)

	choice, err := wizard.Select("Select Folder to Open:", options, 10)
	if err != nil {
		return err
	}

	target := outputRoot
	if choice != openRootOption {
		parts := strings.Split(choice, " / ")
		if len(parts) == 2 {
			target = filepath.Join(outputRoot, parts[0], parts[1])
		}
	}

	fmt.Printf("Opening: %s\n", target)
	launchFileManager(target)
	return nil
}

// launchFileManager opens a directory in the OS file manager without
// waiting for it.
func launchFileManager(path string) {
	switch runtime.GOOS {
	case "darwin":
		_ = exec.Command("open", path).Start()
	case "windows":
		_ = exec.Command("explorer", path).Start()
	default:
		_ = exec.Command("xdg-open", path).Start()
	}
}

// revealInFileManager opens a file and highlights it in the OS file manager
// where the platform supports it.
func revealInFileManager(path string) {
	switch runtime.GOOS {
	case "darwin":
		_ = exec.Command("open", "-R", path).Start()
	case "windows":
		_ = exec.Command("explorer", "/select,"+path).Start()
	default:
		// No portable highlight on Linux; open the containing folder.
		_ = exec.Command("xdg-open", filepath.Dir(path)).Start()
	}
}
