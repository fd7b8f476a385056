package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/aleister1102/storeconf/internal/storage"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/disk"
	"gopkg.in/yaml.v3"
)

// PathUsage reports the filesystem backing one database path.
type PathUsage struct {
	Name        string  `json:"name" yaml:"name"`
	Path        string  `json:"path,omitempty" yaml:"path,omitempty"`
	Fstype      string  `json:"fstype,omitempty" yaml:"fstype,omitempty"`
	Total       uint64  `json:"total" yaml:"total"`
	Free        uint64  `json:"free" yaml:"free"`
	UsedPercent float64 `json:"usedPercent" yaml:"usedPercent"`
	Error       string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func inspect(registry *storage.Registry, zLogger zerolog.Logger) []PathUsage {
	usages := make([]PathUsage, 0, registry.Len())
	for _, name := range registry.Names() {
		usage := PathUsage{Name: name}
		path, ok := registry.PathFor(name)
		if !ok {
			usages = append(usages, usage)
			continue
		}
		usage.Path = path

		stat, err := disk.Usage(path)
		if err != nil {
			zLogger.Warn().Err(err).Str("name", name).Str("path", path).Msg("Failed to read disk usage")
			usage.Error = err.Error()
		} else {
			usage.Fstype = stat.Fstype
			usage.Total = stat.Total
			usage.Free = stat.Free
			usage.UsedPercent = stat.UsedPercent
		}
		usages = append(usages, usage)
	}
	return usages
}

func renderRegistry(w io.Writer, registry *storage.Registry, output string) error {
	switch output {
	case outputYAML:
		out, err := registry.Describe()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case outputJSON:
		return writeJSON(w, registry.View())
	}

	view := registry.View()
	fmt.Fprintf(w, "dbDirectory: %s\nindexDirectory: %s\n\n", view.DBDirectory, view.IndexDirectory)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tCOMPRESSION\tBLOCK\tWRITE_BUFFER\tCACHE\tMAX_OPEN\tCREATE\tPARANOID\tVERIFY")
	for _, p := range view.Properties {
		o := p.Options
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%t\t%t\t%t\n",
			p.Name, orDash(p.Path), o.Compression, o.BlockSize, o.WriteBufferSize,
			o.CacheSize, o.MaxOpenFiles, o.CreateIfMissing, o.ParanoidChecks, o.VerifyChecksums)
	}
	return tw.Flush()
}

func renderInspect(w io.Writer, usages []PathUsage, output string) error {
	switch output {
	case outputYAML:
		data, err := yaml.Marshal(usages)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case outputJSON:
		return writeJSON(w, usages)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tFSTYPE\tTOTAL\tFREE\tUSED%")
	for _, u := range usages {
		if u.Path == "" {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\n", u.Name)
			continue
		}
		if u.Error != "" {
			fmt.Fprintf(tw, "%s\t%s\terror: %s\t-\t-\t-\n", u.Name, u.Path, u.Error)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			u.Name, u.Path, u.Fstype, u.Total, u.Free, strconv.FormatFloat(u.UsedPercent, 'f', 1, 64))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
