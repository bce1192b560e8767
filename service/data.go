package service

import (
	"fmt"
	"os"

	"github.com/gripdash/gripdash/config"
	"github.com/gripdash/gripdash/dataset"
	"github.com/gripdash/gripdash/dossier"
	"github.com/gripdash/gripdash/excel"
	"github.com/gripdash/gripdash/indication"
	"github.com/yaoapp/kun/log"
)

// Data is the loaded content the service answers from.
type Data struct {
	Target   string
	Records  []indication.Record
	Programs []dataset.Program
	Dossiers *dossier.Store
}

// Load reads the datasets of the configured target. The frequency table
// is required, CSV first with a workbook fallback. The landscape and
// the dossiers are optional, a missing file is tolerated but a
// malformed one fails the load.
func Load(conf config.Config) (*Data, error) {
	data := &Data{Target: conf.Target}

	records, err := loadFrequency(conf)
	if err != nil {
		return nil, err
	}
	data.Records = records

	if data.Programs, err = loadPrograms(conf); err != nil {
		return nil, err
	}
	if data.Dossiers, err = loadDossiers(conf); err != nil {
		return nil, err
	}

	log.Info("loaded %d indications, %d programmes, %d dossiers for %s",
		len(data.Records), len(data.Programs), data.Dossiers.Len(), data.Target)
	return data, nil
}

func loadFrequency(conf config.Config) ([]indication.Record, error) {
	path := dataset.FrequencyPath(conf.DataRoot, conf.Target)
	if _, err := os.Stat(path); err == nil {
		return dataset.ReadFrequency(path)
	}

	book := excel.FrequencyPath(conf.DataRoot, conf.Target)
	if _, err := os.Stat(book); err == nil {
		return excel.ReadFrequency(book)
	}

	return nil, fmt.Errorf("can't read frequency table: neither %s nor %s exists", path, book)
}

func loadPrograms(conf config.Config) ([]dataset.Program, error) {
	path := dataset.CompetitivePath(conf.DataRoot, conf.Target)
	if _, err := os.Stat(path); err == nil {
		return dataset.ReadPrograms(path)
	}

	book := excel.CompetitivePath(conf.DataRoot, conf.Target)
	if _, err := os.Stat(book); err == nil {
		return excel.ReadPrograms(book)
	}

	log.Warn("no competitive landscape for %s under %s", conf.Target, conf.DataRoot)
	return []dataset.Program{}, nil
}

func loadDossiers(conf config.Config) (*dossier.Store, error) {
	if _, err := os.Stat(conf.DossierRoot); err != nil {
		log.Warn("no dossiers under %s", conf.DossierRoot)
		return dossier.NewStore(), nil
	}
	return dossier.Open(conf.DossierRoot)
}
