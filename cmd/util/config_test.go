package util

import (
	"testing"

	"github.com/ZettaAI/SEAMLeSS/config"
)

func TestMergeConfigFileWithFlags(t *testing.T) {
	fileConf := config.DefaultConfig()
	fileConf.Launch.Seed = 7
	fileConf.Launch.Plan = "fine"

	path, cleanup := TempConfigFile(fileConf, "config.yml")
	defer cleanup()

	flagConf := config.Config{}
	flagConf.Launch.Plan = "coarse"

	conf, err := MergeConfigFileWithFlags(path, flagConf)
	if err != nil {
		t.Fatal(err)
	}

	// file value survives
	if conf.Launch.Seed != 7 {
		t.Error("unexpected seed", conf.Launch.Seed)
	}
	// flag value wins over the file
	if conf.Launch.Plan != "coarse" {
		t.Error("unexpected plan", conf.Launch.Plan)
	}
	// untouched values fall through to defaults
	if conf.Launch.CondaEnv != "rllab3" {
		t.Error("unexpected environment", conf.Launch.CondaEnv)
	}
}

func TestMergeConfigMissingFile(t *testing.T) {
	_, err := MergeConfigFileWithFlags("does-not-exist.yml", config.Config{})
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
