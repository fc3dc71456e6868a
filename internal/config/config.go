package config

type Config struct {
	Backend   BackendConfig   `yaml:"backend" toml:"backend"`
	Auth      AuthConfig      `yaml:"auth" toml:"auth"`
	Diagnosis DiagnosisConfig `yaml:"diagnosis" toml:"diagnosis"`
	UI        UIConfig        `yaml:"ui" toml:"ui"`
	Update    UpdateConfig    `yaml:"update" toml:"update"`
}

type BackendConfig struct {
	URL         string `yaml:"url" toml:"url"`
	Timeout     int    `yaml:"timeout" toml:"timeout"` // seconds
	HealthCheck *bool  `yaml:"health_check" toml:"health_check"`
}

type AuthConfig struct {
	PatientID int    `yaml:"patient_id" toml:"patient_id"`
	DoctorID  int    `yaml:"doctor_id" toml:"doctor_id"`
	TokenEnv  string `yaml:"token_env" toml:"token_env"`

	// Token is resolved from the TokenEnv variable at load time.
	Token string `yaml:"-" toml:"-"`
}

type DiagnosisConfig struct {
	Symptoms []string `yaml:"symptoms" toml:"symptoms"`
}

type UIConfig struct {
	DefaultPanel   string `yaml:"default_panel" toml:"default_panel"`
	ShowDisclaimer *bool  `yaml:"show_disclaimer" toml:"show_disclaimer"`
}

type UpdateConfig struct {
	Repo string `yaml:"repo" toml:"repo"`
}
