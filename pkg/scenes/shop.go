package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/game"
)

// Upgrade 商店升级项
type Upgrade int

const (
	UpgradeWeapon Upgrade = iota
	UpgradeSpeed
	UpgradeHealth
	UpgradeExtraLife
)

// AllUpgrades 商店陈列顺序
var AllUpgrades = []Upgrade{UpgradeWeapon, UpgradeSpeed, UpgradeHealth, UpgradeExtraLife}

var (
	ErrShopClosed        = errors.New("shop is not open")
	ErrInsufficientFunds = errors.New("insufficient currency")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
)

func (u Upgrade) String() string {
	switch u {
	case UpgradeWeapon:
		return "weapon"
	case UpgradeSpeed:
		return "speed"
	case UpgradeHealth:
		return "health"
	case UpgradeExtraLife:
		return "extra_life"
	}
	return "unknown"
}

// Cost 升级价格，未知升级返回 -1
func (u Upgrade) Cost() int {
	switch u {
	case UpgradeWeapon:
		return config.CostWeapon
	case UpgradeSpeed:
		return config.CostSpeed
	case UpgradeHealth:
		return config.CostHealth
	case UpgradeExtraLife:
		return config.CostExtraLife
	}
	return -1
}

// Currency 可用货币 = floor(分数/100) - 本局已花费
func (s *GameScene) Currency() int {
	return max(s.enc.Score.Score()/config.ScorePerCurrency-s.spent, 0)
}

func (s *GameScene) openShop() {
	s.state = StateShop
	currency := s.Currency()
	log.Printf("[GameScene] Shop opened after wave %d (%d currency)", s.wave, currency)
	s.world.Emit(game.EventShopOpened, game.ShopOpenedPayload{Currency: currency})
}

// Purchase 购买升级，立即作用于玩家
func (s *GameScene) Purchase(u Upgrade) error {
	if s.state != StateShop {
		return fmt.Errorf("purchase %s: %w", u, ErrShopClosed)
	}
	cost := u.Cost()
	if cost < 0 {
		return fmt.Errorf("purchase %d: %w", int(u), ErrUnknownUpgrade)
	}
	if s.Currency() < cost {
		return fmt.Errorf("purchase %s (cost %d, have %d): %w", u, cost, s.Currency(), ErrInsufficientFunds)
	}

	player := s.enc.Player
	switch u {
	case UpgradeWeapon:
		player.UpgradeWeapon()
	case UpgradeSpeed:
		player.UpgradeSpeed()
	case UpgradeHealth:
		player.Heal()
	case UpgradeExtraLife:
		player.AddLife()
	}
	s.spent += cost
	s.world.Audio.Play(game.SoundPowerUp)
	log.Printf("[GameScene] Purchased %s for %d", u, cost)
	return nil
}

// CloseShop 关闭商店并开始下一波
func (s *GameScene) CloseShop() {
	if s.state != StateShop {
		return
	}
	s.startWave(s.wave + 1)
}
