package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/config"
	"github.com/fitmate-dev/workout-partner/backend/internal/repository"
	"github.com/fitmate-dev/workout-partner/backend/internal/seed"
	"github.com/fitmate-dev/workout-partner/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机用户, 2: 为所有用户插入随机排班, 3: 插入内置动作库, 4: 插入随机训练请求)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的用户数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("无法生成随机用户", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("无法插入用户", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入用户成功", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的排班数量")
		} else {
			users, err := repo.GetAllUsers()
			if err != nil {
				slog.Error("无法获取用户列表", slog.String("error", err.Error()))
				return
			}

			cnt := 0
			for _, user := range users {
				for i := 0; i < n; i++ {
					shift := utils.GenerateRandomWorkShift(user.ID)
					if err := repo.CreateWorkShift(shift); err != nil {
						slog.Error("无法插入排班", slog.String("error", err.Error()))
						continue
					}
					cnt++
				}
			}

			slog.Info("插入排班成功", slog.Int("count", cnt))
		}
	case 3:
		seed.SeedExercises(repo)
	case 4:
		if n <= 0 {
			slog.Error("请输入合法的请求数量")
			return
		}

		users, err := repo.GetAllUsers()
		if err != nil {
			slog.Error("无法获取用户列表", slog.String("error", err.Error()))
			return
		}
		if len(users) < 2 {
			slog.Error("用户数量不足，无法生成训练请求")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			from := users[rand.Intn(len(users))]
			to := users[rand.Intn(len(users))]
			if from.ID == to.ID {
				continue
			}

			request := utils.GenerateRandomTrainingRequest(from.ID, to.ID)
			if err := repo.CreateTrainingRequest(request); err != nil {
				slog.Error("无法插入训练请求", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}

		slog.Info("插入训练请求成功", slog.Int("count", cnt))
	default:
		slog.Error("指定的操作非法")
	}
}
