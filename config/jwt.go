package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// token 有效期，单位小时，默认 7 天
	ExpireHour int `json:"expire_hour" yaml:"expire_hour"`
}

func (j *Jwt) Expire() time.Duration {
	if j.ExpireHour <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(j.ExpireHour) * time.Hour
}
