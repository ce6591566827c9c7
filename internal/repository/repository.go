package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., memory) inside this directory.
