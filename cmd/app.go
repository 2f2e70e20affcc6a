// Package cmd implements the CLI application to track personal net worth.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/hstanley/networth"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&trendCmd{},
	&milestonesCmd{},
	&goalCmd{},
	&recordCmd{},
	&historyCmd{},
	&addItemCmd{},
	&deleteItemCmd{},
	&itemsCmd{},
	&addCategoryCmd{},
	&categoriesCmd{},
	&exportCmd{},
	&migrateCmd{},
	&topicCmd{},
	&assistCmd{},
}

const EnvDataFile = "NWT_DATA_FILE"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data-file", "", "Path to the net worth data file. Defaults to "+EnvDataFile+", then the last opened file, then networth_data.json.")

// DataFile resolves the data file path: the -data-file flag, the
// environment, the session's last opened file, then the default name in the
// working directory.
func DataFile() string {
	if *dataFile != "" {
		return *dataFile
	}
	if path := os.Getenv(EnvDataFile); path != "" {
		return path
	}
	if path, ok := networth.LoadLastOpened(prefFile()); ok {
		return path
	}
	return "networth_data.json"
}

// prefFile is where session preferences live, next to the user's other app
// configs when the platform tells us, or the working directory otherwise.
func prefFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "app_config.json"
	}
	return filepath.Join(dir, "nwt", "app_config.json")
}

// DecodeTracker loads the tracker from the app data file. A missing or
// malformed file degrades to an empty tracker with a warning; neither stops
// the command.
func DecodeTracker() (*networth.Tracker, error) {
	t, err := networth.LoadTracker(DataFile())
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, data file does not exist, starting with an empty tracker")
		return networth.NewTracker(), nil
	}
	if errors.Is(err, networth.ErrMalformedDocument) {
		log.Printf("warning, %v, starting with an empty tracker", err)
		return networth.NewTracker(), nil
	}
	return t, err
}

// EncodeTracker saves the tracker to the app data file and remembers it as
// the session's last opened file.
func EncodeTracker(t *networth.Tracker) error {
	path := DataFile()
	if err := networth.SaveTracker(path, t); err != nil {
		return err
	}
	pref := prefFile()
	if err := os.MkdirAll(filepath.Dir(pref), 0755); err == nil {
		if err := networth.SaveLastOpened(pref, path); err != nil {
			log.Printf("warning, could not record last opened file: %v", err)
		}
	}
	return nil
}
