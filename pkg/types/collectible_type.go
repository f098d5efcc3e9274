package types

// CollectibleType 掉落物类型
type CollectibleType string

const (
	CollectibleCoin        CollectibleType = "coin"
	CollectibleCrystal     CollectibleType = "crystal"
	CollectibleStar        CollectibleType = "star"
	CollectibleFortuneCoin CollectibleType = "fortune_coin"
)

// DefaultCollectibleType 未知掉落物类型的回退
const DefaultCollectibleType = CollectibleCoin

// ParseCollectibleType 解析掉落物类型，未知类型回退为金币
func ParseCollectibleType(s string) CollectibleType {
	switch t := CollectibleType(s); t {
	case CollectibleCoin, CollectibleCrystal, CollectibleStar, CollectibleFortuneCoin:
		return t
	}
	return DefaultCollectibleType
}

// IsRare 稀有掉落物（星星、招财币）
func (t CollectibleType) IsRare() bool {
	return t == CollectibleStar || t == CollectibleFortuneCoin
}
