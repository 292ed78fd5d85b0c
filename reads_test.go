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
package coverage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIndex(t *testing.T) {
	in := "start, length\n" +
		"100,60\n" +
		"100,60\n" +
		"140,20\n"
	idx, err := NewReadIndex(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, idx.NumRecords())
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 2, idx.Mult("100,60"))
	assert.Equal(t, 1, idx.Mult("140,20"))
	assert.Equal(t, 0, idx.Mult("999,1"))
}

func TestReadIndexLiteralKeys(t *testing.T) {
	// Dedup identity is the whole raw line: a record with extra columns is
	// a different read even when its coordinates match, and a key is not
	// validated as CSV at load time.
	in := "start, length\n" +
		"100,60\n" +
		"100,60,sampleA\n" +
		"not,a,number\n" +
		"not,a,number\n"
	idx, err := NewReadIndex(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, idx.NumRecords())
	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, 1, idx.Mult("100,60"))
	assert.Equal(t, 1, idx.Mult("100,60,sampleA"))
	assert.Equal(t, 2, idx.Mult("not,a,number"))
}

func TestReadIndexCRLF(t *testing.T) {
	in := "start, length\r\n100,60\r\n100,60\r\n"
	idx, err := NewReadIndex(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Mult("100,60"))
}

func TestReadIndexHeaderOnly(t *testing.T) {
	idx, err := NewReadIndex(strings.NewReader("start, length\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, idx.NumRecords())
	assert.Equal(t, 0, idx.Len())
}

func TestReadIndexEmptyInput(t *testing.T) {
	_, err := NewReadIndex(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing header line")
}

func TestReadIndexEach(t *testing.T) {
	in := "start, length\n100,60\n100,60\n140,20\n"
	idx, err := NewReadIndex(strings.NewReader(in))
	require.NoError(t, err)
	got := map[string]int{}
	idx.Each(func(key string, mult int) { got[key] = mult })
	assert.Equal(t, map[string]int{"100,60": 2, "140,20": 1}, got)
}
