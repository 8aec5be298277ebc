package fixulps

import (
	"fmt"
	"os"
	"path"

	"github.com/shirou/gopsutil/disk"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func is_disk_space_ok(filename string, val uint) bool {
	var dir = path.Dir(filename)
	if !path.IsAbs(dir) {
		pwd, _ := os.Getwd()
		dir = path.Join(pwd, dir)
	}
	partitions, err := disk.Partitions(true)
	if err != nil {
		log.Errorf("Error getting partitions: %s", err.Error())
		return true
	}
	var mountPoint string
	for _, partition := range partitions {
		if dir == partition.Mountpoint || (len(dir) > len(partition.Mountpoint) && dir[:len(partition.Mountpoint)] == partition.Mountpoint) {
			if len(partition.Mountpoint) > len(mountPoint) {
				mountPoint = partition.Mountpoint
			}
		}
	}
	if mountPoint == "" {
		log.Errorf("No partition found for path: %s", dir)
		return true
	}
	usage, err := disk.Usage(mountPoint)
	if err != nil {
		log.Errorf("Error getting disk usage: %v", err)
		return true
	}
	return usage.Free/1024/1024 > uint64(val)
}

func CommandFixUlps() error {
	Common_entries()
	LoadOptionContext()
	if Help {
		print_usage(FIXULPS)
		pflag.PrintDefaults()
		os.Exit(EXIT_SUCCESS)
	}
	if ProgramVersion {
		print_version(FIXULPS)
		os.Exit(EXIT_SUCCESS)
	}
	if Debug {
		Set_debug()
	}
	if err := Set_verbose(); err != nil {
		return err
	}
	initialize_common_options(FIXULPS)
	// The defaults file may have raised the verbosity.
	if err := Set_verbose(); err != nil {
		return err
	}

	args := pflag.Args()
	if len(args) < 4 {
		print_usage(FIXULPS)
		os.Exit(EXIT_FAILURE)
	}
	return run_files(args[0], args[1], args[2], args[3:])
}

// run_files rewrites each file in order and stops at the first failure.
// Files already rewritten stay committed.
func run_files(func2rem string, ftype2rem string, fpart2rem string, files []string) error {
	for _, filename := range files {
		if MinFreeSpace > 0 && !is_disk_space_ok(filename, MinFreeSpace) {
			return fmt.Errorf("less than %dMB free on the filesystem of %s, not rewriting", MinFreeSpace, filename)
		}
		if err := filter_file(filename, func2rem, ftype2rem, fpart2rem); err != nil {
			return err
		}
		log.Infof("Updated %s", filename)
	}
	return nil
}
