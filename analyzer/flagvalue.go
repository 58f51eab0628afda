// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"strconv"
	"strings"
)

// boolValue toggles one bit of a flag set B.
type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	enabled, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, enabled)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	return f.enabled()
}

func (f boolValue[_, B]) enabled() bool {
	var null B

	return f.flags != null && f.flags.Enabled(f.value)
}

// IsBoolFlag marks boolValue as a boolean [flag.Value].
func (boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool accepts the values of [strconv.ParseBool], plus on and off in any case.
func parseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "on":
		return true, nil

	case "off":
		return false, nil
	}

	return strconv.ParseBool(str)
}

// listValue is a comma separated list flag. Blank elements are dropped.
type listValue []string

// Set implements [flag.Value].
func (l *listValue) Set(s string) error {
	var list []string

	for e := range strings.SplitSeq(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			list = append(list, e)
		}
	}

	*l = list

	return nil
}

// String implements [flag.Value].
func (l *listValue) String() string {
	if l == nil {
		return ""
	}

	return strings.Join(*l, ",")
}

// Get implements [flag.Getter].
func (l *listValue) Get() any {
	if l == nil {
		return []string(nil)
	}

	return []string(*l)
}
