// Package main provides the entry point of the dtlpy command. It manages
// feature flags and user settings of the data platform through its REST API
// and serves a local emulator of the settings endpoints backed by gorm.
package main
