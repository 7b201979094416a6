// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"testing"

	"github.com/MKhiriev/blended-mgmt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_BuildConfig(t *testing.T) {
	shared := Fragment{
		"entry": map[string]any{"index": []any{"./bundles/index.js"}},
		"output": map[string]any{
			"path":       "target/assets",
			"publicPath": "/assets/",
			"filename":   "[name]-bundle.js",
		},
		"plugins": []any{map[string]any{"name": "NoEmitOnErrorsPlugin"}},
		"module": map[string]any{"rules": []any{
			map[string]any{"test": `\.css$`, "use": []any{
				map[string]any{"loader": "style-loader"},
				map[string]any{"loader": "css-loader"},
			}},
		}},
	}
	dev := Fragment{
		"devServer": map[string]any{
			"port":           8090,
			"clientLogLevel": "info",
			"proxy": map[string]any{
				"/management": map[string]any{
					"target":      "http://localhost:8090",
					"pathRewrite": map[string]any{"^/management": ""},
				},
			},
		},
		"plugins": []any{map[string]any{
			"name":    "DefinePlugin",
			"options": map[string]any{"process.env.NODE_ENV": "development"},
		}},
	}

	effective, err := Merge(shared, dev)
	require.NoError(t, err)

	var cfg models.BuildConfig
	require.NoError(t, Decode(effective, &cfg))

	assert.Equal(t, []string{"./bundles/index.js"}, cfg.Entry["index"])
	assert.Equal(t, "/assets/", cfg.Output.PublicPath)
	assert.Equal(t, 8090, cfg.DevServer.Port)
	assert.Equal(t, "http://localhost:8090", cfg.DevServer.Proxy["/management"].Target)
	assert.Equal(t, map[string]string{"^/management": ""}, cfg.DevServer.Proxy["/management"].PathRewrite)
	require.Len(t, cfg.Plugins, 2)
	assert.Equal(t, "NoEmitOnErrorsPlugin", cfg.Plugins[0].Name)
	assert.Equal(t, "DefinePlugin", cfg.Plugins[1].Name)
	require.Len(t, cfg.Module.Rules, 1)
	assert.Equal(t, "css-loader", cfg.Module.Rules[0].Use[1].Loader)
}

func TestDecode_UnknownField(t *testing.T) {
	var cfg models.BuildConfig
	err := Decode(Fragment{"devServr": map[string]any{"port": 1}}, &cfg)
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "devServr")
}

func TestDecode_WrongType(t *testing.T) {
	var cfg models.BuildConfig
	err := Decode(Fragment{"devServer": map[string]any{"port": "eighty"}}, &cfg)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownField)
}
