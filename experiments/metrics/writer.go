package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder for one experiment run.
func NewWriter(base, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(base, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent", "cutoff"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Agent,
			strconv.Itoa(config.Cutoff),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	path := filepath.Join(w.baseDir, "summaries.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summaries file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"agent", "hands", "wins", "pushes", "losses", "win_rate", "decisions", "decision_time"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summaries header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			strconv.Itoa(s.Agent.ID),
			strconv.Itoa(s.Hands),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Pushes),
			strconv.Itoa(s.Losses),
			strconv.FormatFloat(s.WinRate(), 'f', 4, 64),
			strconv.Itoa(s.Decisions),
			s.DecisionTime().String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteHandRecords(records []HandRecord) error {
	path := filepath.Join(w.baseDir, "hand_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create hand records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent", "outcome", "player_total", "dealer_total", "decisions", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write hand records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			record.Outcome.String(),
			strconv.Itoa(record.PlayerTotal),
			strconv.Itoa(record.DealerTotal),
			strconv.Itoa(record.Decisions),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write hand record row: %w", err)
		}
	}

	return nil
}
