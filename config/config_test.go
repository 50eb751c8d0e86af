package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestYamlRoundTrip(t *testing.T) {
	conf := DefaultConfig()
	conf.Launch.RunName = "roundtrip"
	conf.Launch.Seed = 99
	conf.Slurm.MailUser = "runzhey@example.com"
	conf.Slurm.PollRate = Duration(time.Second * 5)

	b, err := ToYaml(conf)
	if err != nil {
		t.Fatal(err)
	}

	var parsed Config
	err = Parse(b, &parsed)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(conf, parsed) {
		t.Fatalf("config did not survive a YAML round trip:\nwant %+v\ngot  %+v", conf, parsed)
	}
}

func TestParseFile(t *testing.T) {
	conf := DefaultConfig()
	conf.Launch.CondaEnv = "rllab9"
	conf.Launch.Plan = "fine"

	p := filepath.Join(t.TempDir(), "config.yml")
	err := ToYamlFile(conf, p)
	if err != nil {
		t.Fatal(err)
	}

	loaded := DefaultConfig()
	err = ParseFile(p, &loaded)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Launch.CondaEnv != "rllab9" {
		t.Error("unexpected CondaEnv", loaded.Launch.CondaEnv)
	}
	if loaded.Launch.Plan != "fine" {
		t.Error("unexpected Plan", loaded.Launch.Plan)
	}
}

func TestParseFileMissing(t *testing.T) {
	conf := DefaultConfig()

	// An empty path is not an error; the defaults are used as-is.
	if err := ParseFile("", &conf); err != nil {
		t.Fatal(err)
	}

	err := ParseFile(filepath.Join(t.TempDir(), "missing.yml"), &conf)
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestDefaultConfigWorkDir(t *testing.T) {
	cwd, _ := os.Getwd()
	conf := DefaultConfig()
	if conf.Slurm.WorkDir != filepath.Join(cwd, "slaunch-work-dir") {
		t.Error("unexpected submit work dir", conf.Slurm.WorkDir)
	}
}
