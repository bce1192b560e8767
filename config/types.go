package config

// Config the GRIP Dashboard Engine configuration
type Config struct {
	Mode        string   `json:"mode,omitempty" env:"GRIPDASH_ENV" envDefault:"production"`   // Startup mode production/development
	Root        string   `json:"root,omitempty" env:"GRIPDASH_ROOT" envDefault:"."`           // Application root
	Target      string   `json:"target,omitempty" env:"GRIPDASH_TARGET" envDefault:"RIPK1"`   // Drug target symbol
	TargetLabel string   `json:"target_label,omitempty" env:"GRIPDASH_TARGET_LABEL" envDefault:"RIPK1 (Receptor-Interacting Serine/Threonine-Protein Kinase 1)"` // Display name of the target
	DataRoot    string   `json:"data_root,omitempty" env:"GRIPDASH_DATA_ROOT" envDefault:""`  // Tabular data path, default <GRIPDASH_ROOT>/data
	DossierRoot string   `json:"dossier_root,omitempty" env:"GRIPDASH_DOSSIER_ROOT" envDefault:""` // Dossier content path, default <GRIPDASH_ROOT>/dossiers
	Logo        string   `json:"logo,omitempty" env:"GRIPDASH_LOGO" envDefault:""`            // Brand logo PNG, default <GRIPDASH_ROOT>/assets/logo.png, skipped when absent
	Host        string   `json:"host,omitempty" env:"GRIPDASH_HOST" envDefault:"0.0.0.0"`     // Service host
	Port        int      `json:"port,omitempty" env:"GRIPDASH_PORT" envDefault:"5099"`        // Service port
	AllowFrom   []string `json:"allowfrom,omitempty" envSeparator:"|" env:"GRIPDASH_ALLOW_FROM"` // CORS origins, the separator is |
	Log         string   `json:"log,omitempty" env:"GRIPDASH_LOG"`                            // Log file path
	LogMode     string   `json:"log_mode,omitempty" env:"GRIPDASH_LOG_MODE" envDefault:"TEXT"` // Log mode JSON|TEXT
	LogMaxSize  int      `json:"log_max_size,omitempty" env:"GRIPDASH_LOG_MAX_SIZE" envDefault:"100"` // Max megabytes per log file
	LogMaxAge   int      `json:"log_max_age,omitempty" env:"GRIPDASH_LOG_MAX_AGE" envDefault:"7"`     // Days to retain rotated logs
	LogMaxFiles int      `json:"log_max_files,omitempty" env:"GRIPDASH_LOG_MAX_FILES" envDefault:"10"` // Rotated files to retain
}
