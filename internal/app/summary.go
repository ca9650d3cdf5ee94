// internal/app/summary.go
package app

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// RunSummary - итоги одного прогона симуляции.
type RunSummary struct {
	RunID               string  `yaml:"run_id"`
	Seed                int64   `yaml:"seed"`
	Elapsed             float64 `yaml:"elapsed"`
	Plants              int     `yaml:"plants"`
	Zombies             int     `yaml:"zombies"`
	ZombiesLeft         int     `yaml:"zombies_left"`
	Shots               int     `yaml:"shots"`
	Hits                int     `yaml:"hits"`
	Kills               int     `yaml:"kills"`
	DestinationRequests int     `yaml:"destination_requests"`
	SnapMisses          int     `yaml:"snap_misses"`
	InertPlants         int     `yaml:"inert_plants"`
}

func (s RunSummary) String() string {
	return fmt.Sprintf("run %s: %.2fs, %d shots, %d hits, %d/%d zombies killed, %d destination requests (%d missed)",
		s.RunID, s.Elapsed, s.Shots, s.Hits, s.Kills, s.Zombies, s.DestinationRequests, s.SnapMisses)
}

const (
	summaryObject = "runs"
	latestProp    = "latest"
)

// SummaryStore хранит итоги прогонов через gdata. С nil-менеджером работает
// в памяти: сохранение не падает, но ничего не переживает перезапуск.
type SummaryStore struct {
	gdataManager *gdata.Manager
	memory       map[string][]byte
}

func NewSummaryStore(gdataManager *gdata.Manager) *SummaryStore {
	return &SummaryStore{
		gdataManager: gdataManager,
		memory:       make(map[string][]byte),
	}
}

// OpenSummaryStore открывает хранилище приложения appName. Если gdata
// недоступна, возвращается хранилище в памяти и ошибка для лога.
func OpenSummaryStore(appName string) (*SummaryStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSummaryStore(nil), fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return NewSummaryStore(manager), nil
}

// Persistent сообщает, пишет ли хранилище на диск.
func (s *SummaryStore) Persistent() bool {
	return s.gdataManager != nil
}

// Save сохраняет сводку под её RunID и помечает её последней.
func (s *SummaryStore) Save(summary RunSummary) error {
	if summary.RunID == "" {
		return fmt.Errorf("summary without run id")
	}
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := s.put(summary.RunID, data); err != nil {
		return err
	}
	if err := s.put(latestProp, []byte(summary.RunID)); err != nil {
		return err
	}
	log.Printf("SummaryStore: saved run %s", summary.RunID)
	return nil
}

// Load читает сводку прогона runID.
func (s *SummaryStore) Load(runID string) (RunSummary, error) {
	var summary RunSummary
	data, ok, err := s.get(runID)
	if err != nil {
		return summary, err
	}
	if !ok {
		return summary, fmt.Errorf("run %s not found", runID)
	}
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return summary, fmt.Errorf("failed to unmarshal summary %s: %w", runID, err)
	}
	return summary, nil
}

// Latest возвращает последнюю сохранённую сводку; false - сводок нет.
func (s *SummaryStore) Latest() (RunSummary, bool, error) {
	id, ok, err := s.get(latestProp)
	if err != nil || !ok {
		return RunSummary{}, false, err
	}
	summary, err := s.Load(string(id))
	if err != nil {
		return RunSummary{}, false, err
	}
	return summary, true, nil
}

func (s *SummaryStore) put(prop string, data []byte) error {
	if s.gdataManager == nil {
		s.memory[prop] = data
		return nil
	}
	if err := s.gdataManager.SaveObjectProp(summaryObject, prop, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", prop, err)
	}
	return nil
}

func (s *SummaryStore) get(prop string) ([]byte, bool, error) {
	if s.gdataManager == nil {
		data, ok := s.memory[prop]
		return data, ok, nil
	}
	if !s.gdataManager.ObjectPropExists(summaryObject, prop) {
		return nil, false, nil
	}
	data, err := s.gdataManager.LoadObjectProp(summaryObject, prop)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", prop, err)
	}
	return data, true, nil
}
