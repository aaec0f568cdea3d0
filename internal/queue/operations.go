// SPDX-License-Identifier: Apache-2.0

package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bytesforge/laano-sync/internal/cloud"
	"github.com/bytesforge/laano-sync/internal/utils"
)

// CheckCredentials probes whether the target account is accepted by the
// server. The result value is true when the credentials work.
type CheckCredentials struct {
	Endpoint Target
}

func (c CheckCredentials) Target() Target { return c.Endpoint }

func (c CheckCredentials) Run(ctx context.Context, client *utils.HTTPClient) (any, error) {
	resp, err := client.R().SetContext(ctx).Head("/")
	if err != nil {
		return false, fmt.Errorf("credentials probe: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return false, fmt.Errorf("%w: account %s rejected", cloud.ErrUnauthorized, c.Endpoint.Account)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return false, fmt.Errorf("%w: http %d", cloud.ErrServerError, resp.StatusCode())
	default:
		return true, nil
	}
}

// ServerInfo is the server status document returned by GetServerInfo.
type ServerInfo struct {
	Installed   bool   `json:"installed"`
	Maintenance bool   `json:"maintenance"`
	Version     string `json:"version"`
}

// GetServerInfo fetches the server status document. The result value is a
// [ServerInfo].
type GetServerInfo struct {
	Endpoint Target
}

func (g GetServerInfo) Target() Target { return g.Endpoint }

func (g GetServerInfo) Run(ctx context.Context, client *utils.HTTPClient) (any, error) {
	resp, err := client.R().SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/status.php")
	if err != nil {
		return nil, fmt.Errorf("server info probe: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("server info probe: http %d", resp.StatusCode())
	}

	var info ServerInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return nil, fmt.Errorf("decode server info: %w", err)
	}

	return info, nil
}
