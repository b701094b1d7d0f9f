package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"shownotes/internal/api"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show server status and job counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			status, err := fetchStatus(cmd.Context(), cfg.Server.Bind)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, status)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderStatus(status))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the raw status response as JSON")
	return cmd
}

func fetchStatus(ctx context.Context, bind string) (*api.StatusResponse, error) {
	endpoint := "http://" + bind + "/api/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connect to server at %s: %w; start it with `shownotes serve`", bind, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	var status api.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return &status, nil
}

func renderStatus(status *api.StatusResponse) string {
	state := "stopped"
	if status.Running {
		state = "running"
	}
	out := fmt.Sprintf("Server: %s (pid %d", state, status.PID)
	if status.Uptime != "" {
		out += ", uptime " + status.Uptime
	}
	out += ")\n"
	out += "Database: " + status.DatabasePath + "\n\n"

	names := make([]string, 0, len(status.Jobs))
	for name := range status.Jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	jobRows := make([][]string, 0, len(names))
	for _, name := range names {
		jobRows = append(jobRows, []string{name, fmt.Sprintf("%d", status.Jobs[name])})
	}
	if len(jobRows) > 0 {
		out += renderTable([]string{"Status", "Jobs"}, jobRows) + "\n"
	} else {
		out += "No jobs recorded\n"
	}

	depRows := make([][]string, 0, len(status.Dependencies))
	for _, dep := range status.Dependencies {
		state := "ok"
		if !dep.Available {
			state = "missing"
			if dep.Optional {
				state = "missing (optional)"
			}
		}
		depRows = append(depRows, []string{dep.Name, state})
	}
	if len(depRows) > 0 {
		out += renderTable([]string{"Dependency", "Status"}, depRows) + "\n"
	}
	return out
}
