package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
	"github.com/mozillazg/go-pinyin"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

// 随机用户绝大多数是普通会员，偶尔混入一个教练
func GenerateRandomRole() domain.Role {
	if rand.Intn(10) == 0 {
		return domain.RoleCoach
	}
	return domain.RoleMember
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

// 生成一条随机的排班，时间落在常见的上下班时段内
func GenerateRandomWorkShift(userID int64) *domain.WorkShift {
	startHour := int32(rand.Intn(14) + 7) // 7~20
	endHour := startHour + int32(rand.Intn(9)) + 1
	if endHour > 23 {
		endHour = 23
	}

	return &domain.WorkShift{
		UserID:    userID,
		DayOfWeek: int32(rand.Intn(7) + 1),
		StartHour: startHour,
		EndHour:   endHour,
	}
}

// 生成一条随机的待处理训练请求，时间在未来一周内的整点
func GenerateRandomTrainingRequest(fromUID int64, toUID int64) *domain.TrainingRequest {
	start := time.Now().Truncate(time.Hour).Add(time.Duration(rand.Intn(24*7)) * time.Hour)
	end := start.Add(time.Duration(rand.Intn(2)+1) * time.Hour)

	return &domain.TrainingRequest{
		FromUID:          fromUID,
		ToUID:            toUID,
		StartEpochMillis: start.UnixMilli(),
		EndEpochMillis:   end.UnixMilli(),
		Status:           domain.TrainingRequestPending,
	}
}
