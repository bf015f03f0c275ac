// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output writes puzzle progress records for `arv status`.
//
// Two writers implement RecordWriter. Writer emits NDJSON (Newline Delimited
// JSON), one record per line, for scripts:
//
//	{"year":2023,"day":5,"stage":"second","stars":1,"selected":true}
//
// TextWriter emits the human listing with one line per puzzle and a pair of
// boxes for the two stars:
//
//	2023/05 🗹☐
package output
