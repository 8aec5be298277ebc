package fixulps

import (
	"os"

	"github.com/spf13/pflag"
)

var (
	Verbose        uint = 2 // Verbosity of output, 0 = silent, 1 = errors, 2 = warnings, 3 = info, 4 = debug
	Debug          bool     // (automatically sets verbosity to 4), print more info
	LogFile        string   // Log file name to use, by default stderr is used
	DefaultsFile   string   // Use a specific defaults file. Default: /etc/fixulps.cnf
	MinFreeSpace   uint     // Do not rewrite a file when its filesystem has this many MB free or less, 0 disables the check
	ProgramVersion bool     // Show the program version and exit
	Help           bool     // Show help options
	Logger         *os.File
	Log_output     *os.File
)

func Common_entries() {
	pflag.UintVarP(&Verbose, "verbose", "v", 2, "Verbosity of output, 0 = silent, 1 = errors, 2 = warnings, 3 = info, 4 = debug")
	pflag.BoolVar(&Debug, "debug", false, "(automatically sets verbosity to 4), Print more info")
	pflag.StringVarP(&LogFile, "logfile", "L", "", "Log file name to use, by default stderr is used")
	pflag.StringVar(&DefaultsFile, "defaults-file", "", "Use a specific defaults file. Default: /etc/fixulps.cnf")
	pflag.UintVar(&MinFreeSpace, "min-free-space", 0, "Do not rewrite a file when its filesystem has this many MB free or less, 0 disables the check")
	pflag.BoolVarP(&ProgramVersion, "version", "V", false, "Show the program version and exit")
	pflag.BoolVarP(&Help, "help", "h", false, "Show help options")
}

func LoadOptionContext() {
	pflag.Parse()
}
