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

// Package finality decides which fields of a type can be marked final.
//
// A field is eligible when every assignment to it, anywhere in the program, happens
// inside a constructor of its declaring type. A field without any assignment is
// eligible as well. Fields that are already final, not editable, enumeration constants
// or (optionally) carry a mock marker are exempt.
//
// The package knows nothing about source languages. A [Host] supplies the snapshot
// of one type: its fields, their assignment sites and their properties. [Select]
// is a pure function of that snapshot; applying the mark is up to the caller.
package finality
