/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package fileutils

import (
	"errors"
	"fmt"
	"github.com/gabriel-vasile/mimetype"
	"unicode/utf8"
)

const maxHeaderBuffer = 1024

var ErrNotText = errors.New("content is not valid utf-8 text")

func header(data []byte) []byte {
	if len(data) > maxHeaderBuffer {
		return data[:maxHeaderBuffer]
	}

	return data
}

// DetectMIME sniffs the content type from the first bytes of data.
func DetectMIME(data []byte) string {
	return mimetype.Detect(header(data)).String()
}

// DecodeText returns data as a string when it is strictly valid UTF-8. The error names
// the sniffed type so binary uploads are easy to tell apart from bad encodings.
func DecodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w. detected type: %s", ErrNotText, DetectMIME(data))
	}

	return string(data), nil
}
