package seed

import (
	"log/slog"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
	"github.com/fitmate-dev/workout-partner/backend/internal/repository"
)

// 内置的动作库，首次部署时灌入
var builtinExercises = []domain.Exercise{
	{Name: "深蹲", Description: "杠铃置于上背，下蹲至大腿与地面平行后站起", MuscleGroup: "腿部", Equipment: "杠铃"},
	{Name: "硬拉", Description: "双手握杠，保持背部平直将杠铃从地面拉起", MuscleGroup: "背部", Equipment: "杠铃"},
	{Name: "卧推", Description: "仰卧于平板凳，将杠铃从胸前推起", MuscleGroup: "胸部", Equipment: "杠铃"},
	{Name: "站姿推举", Description: "站立位将杠铃从肩部推过头顶", MuscleGroup: "肩部", Equipment: "杠铃"},
	{Name: "引体向上", Description: "正握单杠，将身体拉起至下巴过杠", MuscleGroup: "背部", Equipment: "单杠"},
	{Name: "双杠臂屈伸", Description: "支撑于双杠，屈肘下降后撑起", MuscleGroup: "胸部", Equipment: "双杠"},
	{Name: "杠铃划船", Description: "俯身握杠，将杠铃拉向腹部", MuscleGroup: "背部", Equipment: "杠铃"},
	{Name: "哑铃弯举", Description: "站立位屈肘将哑铃举向肩部", MuscleGroup: "手臂", Equipment: "哑铃"},
	{Name: "哑铃侧平举", Description: "双臂向两侧抬起哑铃至与肩同高", MuscleGroup: "肩部", Equipment: "哑铃"},
	{Name: "箭步蹲", Description: "向前跨出一步下蹲，后腿膝盖接近地面", MuscleGroup: "腿部", Equipment: "自重"},
	{Name: "平板支撑", Description: "以肘和脚尖支撑身体，保持躯干平直", MuscleGroup: "核心", Equipment: "自重"},
	{Name: "俯卧撑", Description: "俯身以手掌和脚尖支撑，屈臂下降后撑起", MuscleGroup: "胸部", Equipment: "自重"},
	{Name: "腿举", Description: "坐于器械上用双腿推起配重", MuscleGroup: "腿部", Equipment: "器械"},
	{Name: "高位下拉", Description: "坐姿将横杆拉至锁骨位置", MuscleGroup: "背部", Equipment: "器械"},
	{Name: "卷腹", Description: "仰卧屈膝，收缩腹肌抬起上背", MuscleGroup: "核心", Equipment: "自重"},
}

// SeedExercises 将内置动作库插入数据库，已存在的动作跳过
func SeedExercises(repo *repository.Repository) {
	cnt := 0
	for _, exercise := range builtinExercises {
		e := exercise
		if err := repo.CreateExercise(&e); err != nil {
			slog.Error("无法插入动作", slog.String("name", e.Name), slog.String("error", err.Error()))
			continue
		}
		cnt++
	}
	slog.Info("插入内置动作库成功", slog.Int("count", cnt))
}
