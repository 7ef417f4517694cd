package config

// Config is the root application configuration.
type Config struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Cache     CacheConfig     `yaml:"cache"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
}

// CorpusConfig locates the training data.
type CorpusConfig struct {
	DictionaryPath string `yaml:"dictionary_path" env:"FAKEWORD_DICTIONARY_PATH" env-default:"assets/resources/cmudict.0.6-syl.txt"`
	FrequencyPath  string `yaml:"frequency_path"  env:"FAKEWORD_FREQUENCY_PATH"  env-default:"assets/resources/word_frequency.txt"`
	FrequencyLimit int    `yaml:"frequency_limit" env:"FAKEWORD_FREQUENCY_LIMIT"` // 0 reads the whole list
	Workers        int    `yaml:"workers"         env:"FAKEWORD_WORKERS"         env-default:"0"`
}

// CacheConfig holds model snapshot settings.
type CacheConfig struct {
	Dir      string `yaml:"dir"      env:"FAKEWORD_CACHE_DIR"      env-default:"assets/internal"`
	Disabled bool   `yaml:"disabled" env:"FAKEWORD_CACHE_DISABLED" env-default:"false"`
}

// GeneratorConfig shapes generated words.
type GeneratorConfig struct {
	WordLengthDecay  float64 `yaml:"word_length_decay"  env:"FAKEWORD_WORD_LENGTH_DECAY"  env-default:"1.5"`
	WordLengthBias   float64 `yaml:"word_length_bias"   env:"FAKEWORD_WORD_LENGTH_BIAS"`
	WordLengthMax    int     `yaml:"word_length_max"    env:"FAKEWORD_WORD_LENGTH_MAX"`
	MaxWalkSteps     int     `yaml:"max_walk_steps"     env:"FAKEWORD_MAX_WALK_STEPS"     env-default:"64"`
	ConnectionPolicy string  `yaml:"connection_policy"  env:"FAKEWORD_CONNECTION_POLICY"  env-default:"weighted"`
	MinNovelty       int     `yaml:"min_novelty"        env:"FAKEWORD_MIN_NOVELTY"        env-default:"0"`
	MaxAttempts      int     `yaml:"max_attempts"       env:"FAKEWORD_MAX_ATTEMPTS"       env-default:"32"`
}

// Defaults returns the settings whose zero value is meaningful, so they
// cannot be expressed as env-default tags.
func Defaults() Config {
	return Config{
		Corpus: CorpusConfig{FrequencyLimit: 60000},
		Generator: GeneratorConfig{
			WordLengthBias: 1.5,
			WordLengthMax:  10,
		},
	}
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"FAKEWORD_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"FAKEWORD_LOG_FORMAT" env-default:"text"`
}
