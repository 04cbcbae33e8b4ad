package cli

import (
	"reflect"
	"testing"
)

func TestParseFlags_NoArgsIsGUI(t *testing.T) {
	opts, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if opts == nil || opts.Mode != "gui" {
		t.Fatalf("ParseFlags(nil) = %+v, want gui mode", opts)
	}
	if opts.ConfigPath != "" || opts.Watch {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestParseFlags_Help(t *testing.T) {
	for _, arg := range []string{"help", "--help", "-h"} {
		opts, err := ParseFlags([]string{arg})
		if opts != nil || err != nil {
			t.Errorf("ParseFlags(%q) = %+v, %v, want nil, nil", arg, opts, err)
		}
	}
}

func TestParseFlags_GUIWithConfig(t *testing.T) {
	opts, err := ParseFlags([]string{"-config", "tokens.yaml", "-watch"})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if opts.ConfigPath != "tokens.yaml" || !opts.Watch {
		t.Errorf("ParseFlags() = %+v, want config tokens.yaml with watch", opts)
	}
}

func TestParseFlags_WatchRequiresConfig(t *testing.T) {
	if _, err := ParseFlags([]string{"-watch"}); err == nil {
		t.Error("expected error for -watch without -config")
	}
}

func TestParseFlags_CombineDefaults(t *testing.T) {
	opts, err := ParseFlags([]string{"combine"})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if opts.Mode != "combine" {
		t.Fatalf("Mode = %q, want combine", opts.Mode)
	}
	if opts.CombineRoot != "." || opts.CombineOut != "combined.txt" {
		t.Errorf("defaults = %q/%q, want ./combined.txt", opts.CombineRoot, opts.CombineOut)
	}
	want := []string{".go", ".md", ".yaml", ".yml", ".txt"}
	if !reflect.DeepEqual(opts.CombineExts, want) {
		t.Errorf("CombineExts = %v, want %v", opts.CombineExts, want)
	}
}

func TestParseFlags_CombineExtNormalization(t *testing.T) {
	opts, err := ParseFlags([]string{"combine", "-ext", "go, MD,.Txt,,"})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	want := []string{".go", ".md", ".txt"}
	if !reflect.DeepEqual(opts.CombineExts, want) {
		t.Errorf("CombineExts = %v, want %v", opts.CombineExts, want)
	}
}

func TestParseFlags_CombineFlags(t *testing.T) {
	opts, err := ParseFlags([]string{"combine", "-dir", "/src", "-out", "all.txt"})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if opts.CombineRoot != "/src" || opts.CombineOut != "all.txt" {
		t.Errorf("ParseFlags() = %+v, want dir /src out all.txt", opts)
	}
}
