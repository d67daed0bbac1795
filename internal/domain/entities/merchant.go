package entities

// MerchantConfig is the merchant credential bundle attached to every gateway call.
//
// It is loaded once at startup and shared read-only across requests.
type MerchantConfig struct {
	MerchantUID string
	StoreID     string
	HppKey      string
	BaseURL     string
}

// MerchantCredentials is the credential part of serviceParams.
type MerchantCredentials struct {
	MerchantUID string `json:"merchantUid"`
	StoreID     string `json:"storeId"`
	HppKey      string `json:"hppKey"`
}

func (m MerchantConfig) Credentials() MerchantCredentials {
	return MerchantCredentials{
		MerchantUID: m.MerchantUID,
		StoreID:     m.StoreID,
		HppKey:      m.HppKey,
	}
}

// Missing returns the names of the credential env vars that are empty.
func (m MerchantConfig) Missing() []string {
	var missing []string
	if m.MerchantUID == "" {
		missing = append(missing, "MERCHANT_UID")
	}
	if m.StoreID == "" {
		missing = append(missing, "STORE_ID")
	}
	if m.HppKey == "" {
		missing = append(missing, "HPP_KEY")
	}
	return missing
}
