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

/*
Given a CSV table of genomic loci and a table of reads (start coordinate
and length per row), bio-coverage reports how many reads overlap each
locus.  Duplicate read records are collapsed into a single interval with a
multiplicity weight, so a read that occurs N times contributes N to every
locus it covers.

Loci rows keep their input order in the output, duplicates included.  The
output is a CSV table with a "position, coverage" header and one row per
input locus.

Sample usage:
bio-coverage \
    loci.csv \
    reads.csv \
    coverage.csv
*/
package main
