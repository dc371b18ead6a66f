package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/taigrr/bren/pkg/math3d"
	"github.com/taigrr/bren/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF79C6"))
	labelStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("#8BE9FD"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F2"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <model.obj|model.glb>",
		Short: "Display model information",
		Long:  "Display the format, vertex and face counts and bounding box of a model file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), args[0])
		},
	}
}

func runInfo(out io.Writer, path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	m, err := models.Load(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	lo, hi := m.Bounds()
	size := m.Size()
	ext := strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.Name),
		"",
		row("Format", ext),
		row("File size", fmt.Sprintf("%.2f KB", float64(stat.Size())/1024)),
		row("Vertices", fmt.Sprint(m.VertexCount())),
		row("Faces", fmt.Sprint(m.FaceCount())),
		"",
		row("Bounds min", formatVec(lo)),
		row("Bounds max", formatVec(hi)),
		row("Dimensions", fmt.Sprintf("%.3f x %.3f x %.3f", size.X, size.Y, size.Z)),
		row("Center", formatVec(m.Center())),
	)

	_, err = fmt.Fprintln(out, boxStyle.Render(body))
	return err
}

func formatVec(v math3d.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
