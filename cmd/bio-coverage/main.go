// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

/*
bio-coverage computes a per-locus coverage table from a loci CSV and a
reads CSV.  See doc.go for the file formats.
*/

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/coverage"
)

var noTree = flag.Bool("no-tree", coverage.DefaultOpts.NoTree, "Use the brute-force overlap scan instead of the interval tree")

func bioCoverageUsage() {
	fmt.Printf("Usage: %s [OPTIONS] <loci path> <reads path> <output path>\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioCoverageUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	lociPath := flag.Arg(0)
	readsPath := flag.Arg(1)
	outPath := flag.Arg(2)

	// Both input paths are checked independently so a user with two bad
	// paths sees both diagnostics at once.
	ok := true
	for _, path := range []string{lociPath, readsPath} {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			fmt.Printf("%s does not exist or isn't a file.\n", path)
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}

	log.Printf("Loci from:   %s", lociPath)
	log.Printf("Reads from:  %s", readsPath)
	log.Printf("Output to:   %s", outPath)
	log.Printf("Starting run at %s", time.Now().Format(time.UnixDate))

	ctx := vcontext.Background()
	opts := coverage.Opts{
		NoTree: *noTree,
	}
	if err := coverage.Run(ctx, lociPath, readsPath, outPath, &opts); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("Ended run at %s", time.Now().Format(time.UnixDate))
}
