package config

type TelegramConfig struct {
	ApiToken string `yaml:"token"`
	Owner    int64  `yaml:"owner-id"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

// OwnerID is the only user allowed to talk to the bot; 0 lets anyone in.
func (t *TelegramConfig) OwnerID() int64 {
	return t.Owner
}
