package fixulps

import (
	"fmt"
	"os"
	"path"

	"github.com/go-ini/ini"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	FIXULPS            = "fixulps"
	VERSION            = "0.1.0"
	DEFAULTS_FILE      = "/etc/fixulps.cnf"
	EXIT_SUCCESS       = 0
	EXIT_FAILURE       = 1
	GZIP_EXTENSION     = ".gz"
	ZSTD_EXTENSION     = ".zst"
	FUNCTION_PREFIX    = "Function: "
	FUNCTION_NR_FIELDS = 5
)

var (
	Key_file *ini.File
)

func g_file_test(filename string) bool {
	_, err := os.Stat(filename)
	if err == nil {
		return true
	}
	return false
}

func print_version(program string) {
	fmt.Printf("%s v%s, libm ULP tolerance database editor\n", program, VERSION)
}

func print_usage(program string) {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <func2rem> <ftype2rem> <fpart2rem> <file> [file ...]\n", program)
}

func Load_config_file(config_file string) *ini.File {
	kf, err := ini.Load(config_file)
	if err != nil {
		log.Warnf("Failed to load config file %s: %v", config_file, err)
		return nil
	}
	return kf
}

func parse_key_file_group(kf *ini.File, group string) {
	section := kf.Section(group)
	if section == nil {
		log.Errorf("Loading configuration on section %s is null", group)
		return
	}
	keys := section.Keys()

	for _, key := range keys {
		flag := pflag.CommandLine.Lookup(key.Name())
		if flag == nil {
			log.Warnf("Option %s on section %s is not a valid option", key.Name(), group)
			continue
		}
		// Command line values take precedence over the defaults file.
		if flag.Changed {
			continue
		}
		if err := pflag.Set(key.Name(), key.Value()); err != nil {
			log.Warnf("Invalid value for option %s on section %s: %v", key.Name(), group, err)
		}
	}
	log.Infof("Config file loaded")
}

func initialize_common_options(group string) {
	if DefaultsFile == "" {
		if g_file_test(DEFAULTS_FILE) {
			DefaultsFile = DEFAULTS_FILE
		} else {
			log.Infof("Using no configuration file")
			return
		}
	}
	if !path.IsAbs(DefaultsFile) {
		pwd, _ := os.Getwd()
		DefaultsFile = path.Join(pwd, DefaultsFile)
	}
	Key_file = Load_config_file(DefaultsFile)
	if Key_file == nil {
		return
	}
	if _, err := Key_file.GetSection(group); err == nil {
		parse_key_file_group(Key_file, group)
	}
}
