// Command scadflat flattens an OpenSCAD project into one self-contained
// file, driven by a JSON config naming the input, the output and the
// modifier sections to swap:
//
//	scadflat -root . config/makerworld.json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/soypat/gridtray/scadflat"
)

func main() {
	log.SetFlags(0)
	root := flag.String("root", ".", "project directory include paths resolve against")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: scadflat [-root dir] config.json")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := scadflat.ParseConfig(data)
	if err != nil {
		log.Fatal(err)
	}

	raw, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		log.Fatal(err)
	}
	fsys := os.DirFS(*root)
	content := scadflat.ApplyModifiers(string(raw), cfg.Modifiers, fsys)
	flat, err := scadflat.Flatten(content, fsys, ".")
	if err != nil {
		log.Fatal(err)
	}

	if dir := filepath.Dir(cfg.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			log.Fatal(err)
		}
	}
	if err := os.WriteFile(cfg.OutputFile, []byte(flat), 0666); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s from %s\n", cfg.OutputFile, cfg.InputFile)
}
