package config

import (
	"crypto/ed25519"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/tlb"
	"github.com/tonkeeper/tongo/wallet"
)

const (
	MainNetwork = "mainnet"
	TestNetwork = "testnet"

	// Per-call ceiling for owner withdrawals, in nano tons.
	DefaultWithdrawLimit = uint64(1_000_000_000_000)

	DefaultStatsInterval  = "10m"
	DefaultMetricsAddress = ":9109"
)

var (
	ErrorInvalidNetwork = fmt.Errorf("network must be equal to 'mainnet' or 'testnet' only")

	ErrorNoMnemonic          = fmt.Errorf("no mnemonic is defined")
	ErrorMnemonicConflict    = fmt.Errorf("only one of mnemonic or mnemonic_url must be defined")
	ErrorReadingMnemonicFile = fmt.Errorf("error in reading mnemonic file")

	ErrorInvalidOwnerAddress  = fmt.Errorf("invalid jar owner address")
	ErrorInvalidStatsInterval = fmt.Errorf("invalid time interval for stats broadcast")
	ErrorInvalidWithdrawLimit = fmt.Errorf("withdraw limit must be greater than zero")
	ErrorRelayConfigConflict  = fmt.Errorf("relay_url and relay_secret_key must be defined together")
)

var (
	TrailingSlashRE = regexp.MustCompile("/+$")
)

var (
	dbUri   string
	network string

	mnemonic               string
	mnemonic_url           string
	keeperWalletPrivateKey ed25519.PrivateKey

	ownerAddress   string
	ownerAccountId tongo.AccountID

	relayUrl       string
	relaySecretKey string

	metricsAddress string
	statsInterval  time.Duration
	withdrawLimit  tlb.Grams
)

func ReadConfig(filePath string) {
	viper.SetConfigFile(filePath)

	viper.AutomaticEnv()

	viper.SetDefault("withdraw_limit", DefaultWithdrawLimit)
	viper.SetDefault("stats_interval", DefaultStatsInterval)
	viper.SetDefault("metrics_address", DefaultMetricsAddress)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("⚠️ Failed reading config file: %v\n", err.Error())
	}

	err := initializeVariables()
	if err != nil {
		log.Fatalf("Configuration error - %v\n", err.Error())
	}
}

// This method processes the configuration parameters and keeps the processed
// values in some variables for later accesses rapidly.
func initializeVariables() error {
	var err error

	// Database stuff
	dbUri = TrailingSlashRE.ReplaceAllString(viper.GetString("service_db_uri"), "")

	// Network stuff
	network = strings.TrimSpace(strings.ToLower(viper.GetString("network")))
	if strings.Compare(network, MainNetwork) != 0 && strings.Compare(network, TestNetwork) != 0 {
		return ErrorInvalidNetwork
	}

	// Jar owner stuff. The keeper's own identity is injected here, never
	// compiled in.
	ownerAddress = strings.TrimSpace(viper.GetString("owner_address"))
	ownerAccountId, err = tongo.AccountIDFromBase64Url(ownerAddress)
	if err != nil {
		return ErrorInvalidOwnerAddress
	}

	// Keeper wallet stuff
	mnemonic = strings.TrimSpace(viper.GetString("mnemonic"))
	mnemonic_url = strings.TrimSpace(viper.GetString("mnemonic_url"))
	if mnemonic == "" && mnemonic_url == "" {
		return ErrorNoMnemonic
	}
	if mnemonic != "" && mnemonic_url != "" {
		return ErrorMnemonicConflict
	}

	seed := mnemonic
	if mnemonic_url != "" {
		seed, err = readMnemonicFile(mnemonic_url)
		if err != nil {
			return ErrorReadingMnemonicFile
		}
	}

	keeperWalletPrivateKey, err = wallet.SeedToPrivateKey(seed)
	if err != nil {
		log.Printf("Failed to get private key - %v\n", err.Error())
		return err
	}

	// Notification relay stuff
	relayUrl = strings.TrimSpace(viper.GetString("relay_url"))
	relaySecretKey = strings.TrimSpace(viper.GetString("relay_secret_key"))
	if (relayUrl == "") != (relaySecretKey == "") {
		return ErrorRelayConfigConflict
	}

	//---------------------------------------------------------------
	// metrics address
	metricsAddress = strings.TrimSpace(viper.GetString("metrics_address"))

	//---------------------------------------------------------------
	// stats interval
	strValue := viper.GetString("stats_interval")
	statsInterval, err = time.ParseDuration(strValue)
	if err != nil {
		return ErrorInvalidStatsInterval
	}

	//---------------------------------------------------------------
	// withdraw limit
	limit := viper.GetUint64("withdraw_limit")
	if limit == 0 {
		return ErrorInvalidWithdrawLimit
	}
	withdrawLimit = tlb.Grams(limit)

	return nil
}

func readMnemonicFile(filePath string) (string, error) {

	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Failed to read mmnemonic file - %v\n", err.Error())
		return "", err
	}

	// Convert []byte to string
	content := string(fileContent)
	return content, nil
}

//-------------------------------------------------------------------
// Normal configuration values

func GetDbUri() string {
	return dbUri
}

func GetNetwork() string {
	return network
}

func GetOwnerAddress() string {
	return ownerAddress
}

func GetOwnerAccountId() tongo.AccountID {
	return ownerAccountId
}

func GetKeeperWalletPrivateKey() ed25519.PrivateKey {
	return keeperWalletPrivateKey
}

func GetRelayUrl() string {
	return relayUrl
}

func GetRelaySecretKey() string {
	return relaySecretKey
}

func GetMetricsAddress() string {
	return metricsAddress
}

func GetStatsInterval() time.Duration {
	return statsInterval
}

func GetWithdrawLimit() tlb.Grams {
	return withdrawLimit
}

// -------------------------------------------------------------------
// Evaluating values

func IsTestNet() bool {
	return strings.Compare(network, TestNetwork) == 0
}
