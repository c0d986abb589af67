package config

import (
	"testing"

	"github.com/rtgrab-cli/rtgrab/filesystem"
	"github.com/rtgrab-cli/rtgrab/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should register the documented number of fields", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Listing page size should default to 1000", func() {
			_ = Setup()
			So(viper.GetInt(key.APIPerPage), ShouldEqual, 1000)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("api.per.page")
			So(result, ShouldEqual, "api_per_page")
		})

		Convey("Env should carry the application prefix", func() {
			f := Default[key.APIPerPage]
			So(f.Env(), ShouldEqual, "RTGRAB_API_PER_PAGE")
		})
	})
}
