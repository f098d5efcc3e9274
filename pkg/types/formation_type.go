package types

// FormationType 编队类型
type FormationType string

const (
	FormationV      FormationType = "v"
	FormationGrid   FormationType = "grid"
	FormationCircle FormationType = "circle"
	FormationWave   FormationType = "wave"
)

// AllFormationTypes 波次随机选择时使用的编队列表（顺序固定）
var AllFormationTypes = []FormationType{FormationV, FormationGrid, FormationCircle, FormationWave}

// ParseFormationType 解析编队类型，未知类型回退为 V 字编队
func ParseFormationType(s string) FormationType {
	switch t := FormationType(s); t {
	case FormationV, FormationGrid, FormationCircle, FormationWave:
		return t
	}
	return FormationV
}
