package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yaoapp/kun/exception"
	"github.com/yaoapp/kun/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Conf the effective configuration
var Conf Config

// LogOutput the log sink
var LogOutput io.WriteCloser

func init() {
	Init()
}

// Init load the configuration from the environment, overlaying ./.env when present
func Init() {
	filename, _ := filepath.Abs(filepath.Join(".", ".env"))
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		Conf = Load()
		if Conf.Mode == "development" {
			Development()
		} else {
			Production()
		}
		return
	}

	Conf = LoadFrom(filename)
	if Conf.Mode == "development" {
		Development()
	} else {
		Production()
	}
}

// LoadFrom load the configuration overlaying the given env file
func LoadFrom(envfile string) Config {
	file, err := filepath.Abs(envfile)
	if err != nil {
		cfg := Load()
		ReloadLog()
		return cfg
	}

	godotenv.Overload(file)
	cfg := Load()
	ReloadLog()
	return cfg
}

// Load parse the configuration from the environment
func Load() Config {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		exception.New("Can't read config %s", 500, err.Error()).Throw()
	}

	cfg.Root, _ = filepath.Abs(cfg.Root)

	if cfg.DataRoot == "" {
		cfg.DataRoot = filepath.Join(cfg.Root, "data")
	}
	if !filepath.IsAbs(cfg.DataRoot) {
		cfg.DataRoot, _ = filepath.Abs(cfg.DataRoot)
	}

	if cfg.DossierRoot == "" {
		cfg.DossierRoot = filepath.Join(cfg.Root, "dossiers")
	}
	if !filepath.IsAbs(cfg.DossierRoot) {
		cfg.DossierRoot, _ = filepath.Abs(cfg.DossierRoot)
	}

	if cfg.Logo == "" {
		cfg.Logo = filepath.Join(cfg.Root, "assets", "logo.png")
	}

	return cfg
}

// Production switch to production mode
func Production() {
	os.Setenv("GRIPDASH_ENV", "production")
	Conf.Mode = "production"
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(log.TEXT)
	if Conf.LogMode == "JSON" {
		log.SetFormatter(log.JSON)
	}
	gin.SetMode(gin.ReleaseMode)
	ReloadLog()
}

// Development switch to development mode
func Development() {
	os.Setenv("GRIPDASH_ENV", "development")
	Conf.Mode = "development"
	log.SetLevel(log.TraceLevel)
	log.SetFormatter(log.TEXT)
	if Conf.LogMode == "JSON" {
		log.SetFormatter(log.JSON)
	}
	gin.SetMode(gin.DebugMode)
	ReloadLog()
}

// ReloadLog reopen the log sink
func ReloadLog() {
	CloseLog()
	OpenLog()
}

// OpenLog open the log sink
func OpenLog() {
	if Conf.Log == "" {
		Conf.Log = filepath.Join(Conf.Root, "logs", "application.log")
	}

	if !filepath.IsAbs(Conf.Log) {
		Conf.Log = filepath.Join(Conf.Root, Conf.Log)
	}

	logfile, err := filepath.Abs(Conf.Log)
	if err != nil {
		return
	}

	logpath := filepath.Dir(logfile)
	if _, err := os.Stat(logpath); errors.Is(err, os.ErrNotExist) {
		LogOutput, _ := os.OpenFile(os.DevNull, os.O_WRONLY, 0666)
		log.SetOutput(LogOutput)
		gin.DefaultWriter = io.MultiWriter(LogOutput)
		return
	}

	LogOutput = &lumberjack.Logger{
		Filename:   logfile,
		MaxSize:    Conf.LogMaxSize, // megabytes
		MaxBackups: Conf.LogMaxFiles,
		MaxAge:     Conf.LogMaxAge, // days
	}

	log.SetOutput(LogOutput)
	gin.DefaultWriter = io.MultiWriter(LogOutput)
}

// CloseLog close the log sink
func CloseLog() {
	if LogOutput != nil {
		err := LogOutput.Close()
		if err != nil {
			log.Error(err.Error())
			return
		}
	}
}
