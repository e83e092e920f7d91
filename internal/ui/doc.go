// Package ui renders human-facing output: the pre-generation plan as
// markdown through glamour, lipgloss status styles, and TTY detection.
package ui
