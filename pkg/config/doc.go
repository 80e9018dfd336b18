// Package config loads HDMS settings from hdms.yml and HDMS_* environment
// variables, with the environment taking precedence. Each value remembers
// its source (default, file, or env) for "hdmsctl configuration show".
package config
