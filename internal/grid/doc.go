// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package grid loads grid definitions: a title, a dataset and the column
// list, where each column may carry a filter config under the activate key.
package grid
