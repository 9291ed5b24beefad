// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points AWSASSIST_CFG_FILE at a testdata file and resets the
// global Config so the next getter reloads.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err)

	t.Setenv(EnvFile, absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

// withConfig sets up a test config, loads it and runs fn.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()
	setupTestConfig(t, testFile)
	_, err := Load()
	require.NoError(t, err)
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "us-east-1", cfg.Data["region"])
				assert.Equal(t, "default", cfg.Data["profile"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				s3, ok := cfg.Data["s3"].(map[string]interface{})
				assert.True(t, ok, "s3 should be a map")
				assert.Equal(t, "us-west-2", s3["region"])
				assert.Equal(t, "artifacts", s3["bucket"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "awsassist", cfg.Data["name"])
				assert.Equal(t, 1, cfg.Data["version"])
				assert.Equal(t, true, cfg.Data["confirm"])
				assert.Equal(t, 30.5, cfg.Data["timeout"])
				tags, ok := cfg.Data["tags"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, tags, 2)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Empty(t, cfg.Data)
			},
		},
		{
			name:     "invalid yaml",
			testFile: "invalid.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Setenv(EnvFile, "/nonexistent/awsassist.yaml")
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	cfg, err := Load(filepath.Join("testdata", "simple.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Data["region"])
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv(EnvFile, "/nonexistent/path/awsassist.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_EnvFileIsDirectory(t *testing.T) {
	t.Setenv(EnvFile, "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_PreservesNamespace(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	Config.Namespace = "s3"

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3", cfg.Namespace)
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		namespace    string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{name: "simple", testFile: "simple.yaml", key: "region", want: "us-east-1"},
		{name: "nested", testFile: "nested.yaml", key: "s3.bucket", want: "artifacts"},
		{name: "namespace wins", testFile: "nested.yaml", namespace: "s3", key: "region", want: "us-west-2"},
		{name: "namespace falls back to bare key", testFile: "nested.yaml", namespace: "iam", key: "region", want: "eu-west-1"},
		{name: "missing with default", testFile: "simple.yaml", key: "missing", defaultValue: []string{"d"}, want: "d"},
		{name: "missing without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "multiple defaults", testFile: "simple.yaml", key: "missing", defaultValue: []string{"a", "b"}, wantErr: true},
		{name: "non-string", testFile: "mixed-types.yaml", key: "version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				Config.Namespace = tt.namespace

				got, err := GetString(tt.key, tt.defaultValue...)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{name: "int", testFile: "mixed-types.yaml", key: "version", want: 1},
		{name: "float truncated", testFile: "mixed-types.yaml", key: "timeout", want: 30},
		{name: "nested", testFile: "nested.yaml", key: "s3.max_keys", want: 500},
		{name: "missing with default", testFile: "simple.yaml", key: "missing", defaultValue: []int{60}, want: 60},
		{name: "missing without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "non-int", testFile: "simple.yaml", key: "region", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				got, err := GetInt(tt.key, tt.defaultValue...)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGetBool(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		v, err := GetBool("confirm")
		assert.NoError(t, err)
		assert.True(t, v)

		v, err = GetBool("missing", true)
		assert.NoError(t, err)
		assert.True(t, v)

		_, err = GetBool("name")
		assert.ErrorContains(t, err, "not a bool")
	})
}

func TestGetters_LazyLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	val, err := GetString("region")
	assert.NoError(t, err)
	assert.Equal(t, "us-east-1", val)
	assert.NotEmpty(t, Config.Source)
}

func TestConfig_Get(t *testing.T) {
	tests := []struct {
		name     string
		testFile string
		key      string
		wantVal  interface{}
		wantErr  bool
	}{
		{name: "nested path", testFile: "nested.yaml", key: "iam.prefix", wantVal: "/service/"},
		{name: "missing intermediate key", testFile: "simple.yaml", key: "nonexistent.nested.path", wantErr: true},
		{name: "traverse non-map value", testFile: "mixed-types.yaml", key: "version.something", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				val, err := Config.get(tt.key)
				if tt.wantErr {
					assert.ErrorContains(t, err, "no valid path found")
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, tt.wantVal, val)
			})
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "string-slice.yaml", func(t *testing.T) {
		vals, err := GetStringSlice("list_top")
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, vals)

		vals, err = GetStringSlice("nested.inner.list")
		assert.NoError(t, err)
		assert.Equal(t, []string{"one", "two three"}, vals)

		Config.Namespace = "s3"
		vals, err = GetStringSlice("ls.defaults")
		assert.NoError(t, err)
		assert.Equal(t, []string{"--titles", "--sort -lastModified"}, vals)
		Config.Namespace = ""

		_, err = GetStringSlice("nonstring_list")
		assert.Error(t, err)

		_, err = GetStringSlice("not_a_list")
		assert.Error(t, err)

		def := []string{"x", "y"}
		vals, err = GetStringSlice("does.not.exist", def)
		assert.NoError(t, err)
		assert.Equal(t, def, vals)

		_, err = GetStringSlice("does.not.exist")
		assert.Error(t, err)
	})
}
