// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config resolves command line options and an optional YAML job file
// into an each.Config, applying the environment-derived defaults.
package config
