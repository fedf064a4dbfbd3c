// Copyright 2026 Kestrel Security
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package vocab

import (
	"github.com/kestrelsec/wordlex/core"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
)

// WordVectorMUS is the MUS serializer for core.WordVector.
// Vectors are the bulk of the payload, so components use the fixed-width
// raw encoding rather than varint.
var WordVectorMUS = wordVectorMUS{}

var vectorMUS = ord.NewSliceSer[float32](raw.Float32)

type wordVectorMUS struct{}

func (s wordVectorMUS) Marshal(v core.WordVector, bs []byte) (n int) {
	n = ord.String.Marshal(v.Word, bs)
	n += vectorMUS.Marshal(v.Vector, bs[n:])
	return
}

func (s wordVectorMUS) Unmarshal(bs []byte) (v core.WordVector, n int, err error) {
	v.Word, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s wordVectorMUS) Size(v core.WordVector) (size int) {
	return ord.String.Size(v.Word) + vectorMUS.Size(v.Vector)
}

func (s wordVectorMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}

// MarshalWordVector serializes a WordVector to bytes.
func MarshalWordVector(wv *core.WordVector) []byte {
	buf := make([]byte, WordVectorMUS.Size(*wv))
	WordVectorMUS.Marshal(*wv, buf)
	return buf
}

// UnmarshalWordVector deserializes a WordVector from bytes.
func UnmarshalWordVector(data []byte) (*core.WordVector, error) {
	wv, _, err := WordVectorMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &wv, nil
}
