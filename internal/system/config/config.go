/*
 * Copyright (c) 2025, HireWise, Inc. (https://hirewise.io).
 *
 * HireWise, Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthServerConfig struct {
	JWTSecret      string              `yaml:"jwt_secret"`
	Audience       string              `yaml:"audience"`
	AdminUsername  string              `yaml:"admin_username"`
	AdminPassword  string              `yaml:"admin_password"`
	RequiredScopes map[string][]string `yaml:"required_scopes"`
}

// DataSourceConfig holds the relational database connection settings.
type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// DocumentStoreConfig holds the document database connection settings.
type DocumentStoreConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// RetentionConfig controls how long analytics events are kept active.
type RetentionConfig struct {
	PeriodDays        int `yaml:"period_days"`
	SweepIntervalSecs int `yaml:"sweep_interval_secs"`
}

// UploadConfig controls resume upload validation.
type UploadConfig struct {
	MaxSizeBytes      int64    `yaml:"max_size_bytes"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

// DashboardConfig controls the dashboard snapshot cache.
type DashboardConfig struct {
	CacheTTLSecs int `yaml:"cache_ttl_secs"`
}

// FeedbackConfig controls questionnaire payment generation.
type FeedbackConfig struct {
	PaymentAmount   float64 `yaml:"payment_amount"`
	MinQualityScore int     `yaml:"min_quality_score"`
}

type Config struct {
	Addr          AddrConfig          `yaml:"server"`
	Log           LogConfig           `yaml:"log"`
	AuthServer    AuthServerConfig    `yaml:"auth_server"`
	DataSource    DataSourceConfig    `yaml:"datasource"`
	DocumentStore DocumentStoreConfig `yaml:"document_store"`
	Retention     RetentionConfig     `yaml:"retention"`
	Uploads       UploadConfig        `yaml:"uploads"`
	Dashboard     DashboardConfig     `yaml:"dashboard"`
	Feedback      FeedbackConfig      `yaml:"feedback"`
}
